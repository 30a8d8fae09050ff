package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/domain"
)

type ResponseAdsPixels struct {
	Data []metadomain.Pixel `json:"data"`
}

type ResponsePixelStats struct {
	Data []metadomain.PixelStat `json:"data"`
}

// GetAdsPixels lista os pixels vinculados à conta de anúncios
func (c *MetaClient) GetAdsPixels(accountID string) ([]metadomain.Pixel, error) {
	baseURL := fmt.Sprintf("%s/act_%s/adspixels", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdsPixels
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// GetPixelStats busca as leituras de processamento de eventos do pixel no
// dia informado
func (c *MetaClient) GetPixelStats(pixelID string, date time.Time) ([]metadomain.PixelStat, error) {
	baseURL := fmt.Sprintf("%s/%s/stats", c.Cfg.Meta.URL, pixelID)

	params := url.Values{}
	params.Add("aggregation", "event_total_counts")
	params.Add("start_time", date.Format(time.DateOnly))
	params.Add("end_time", date.AddDate(0, 0, 1).Format(time.DateOnly))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponsePixelStats
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) get(url string) ([]byte, error) {
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

	return c.HandleResponse(resp)
}
