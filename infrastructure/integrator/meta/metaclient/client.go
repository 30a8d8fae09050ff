package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-analyst-api/internal/config"
)

type Client interface {
	GetAccountInsights(accountID string, since, until time.Time, attributionWindows []string) (*metadomain.AccountInsight, error)
	GetCampaignInsights(accountID string, since, until time.Time) ([]metadomain.CampaignInsight, error)
	GetAdsPixels(accountID string) ([]metadomain.Pixel, error)
	GetPixelStats(pixelID string, date time.Time) ([]metadomain.PixelStat, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// HandleResponse lê o corpo da resposta e converte erros da API do Meta
// em erros do cliente
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResponse metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error.Message != "" {
			if errResponse.IsRateLimited() {
				logrus.WithFields(logrus.Fields{
					"code":       errResponse.Error.Code,
					"fbtrace_id": errResponse.Error.FBTraceID,
				}).Warn("Limite de requisições da API do Meta atingido")
			}

			return nil, fmt.Errorf(
				"erro da API do Meta (código %d): %s",
				errResponse.Error.Code,
				errResponse.Error.Message,
			)
		}

		return nil, fmt.Errorf("erro da API do Meta: status %d", resp.StatusCode)
	}

	return body, nil
}
