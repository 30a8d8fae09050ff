package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/domain"
)

type ResponseAccountInsights struct {
	Data   []metadomain.AccountInsight `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

// GetAccountInsights busca os insights agregados da conta no intervalo
// [since, until]. attributionWindows, quando presente, controla a janela de
// atribuição das ações retornadas.
func (c *MetaClient) GetAccountInsights(accountID string, since, until time.Time, attributionWindows []string) (*metadomain.AccountInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "account_id,account_name,spend,impressions,clicks,reach,frequency,cpm,cpc,ctr,actions")
	params.Add("time_range", timeRange)
	if len(attributionWindows) > 0 {
		params.Add("action_attribution_windows", "[\""+strings.Join(attributionWindows, "\",\"")+"\"]")
	}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response ResponseAccountInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Data[0], nil
}
