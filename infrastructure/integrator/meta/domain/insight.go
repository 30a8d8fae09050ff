package metadomain

// A API de insights do Meta devolve métricas numéricas como strings; a
// conversão acontece nas factories do integrador.

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type AccountInsight struct {
	AccountID   string   `json:"account_id"`
	AccountName string   `json:"account_name"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Frequency   string   `json:"frequency"`
	CPM         string   `json:"cpm"`
	CPC         string   `json:"cpc"`
	CTR         string   `json:"ctr"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

type CampaignInsight struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Clicks       string `json:"clicks"`
	Reach        string `json:"reach"`
	Frequency    string `json:"frequency"`
	CPM          string `json:"cpm"`
	CPC          string `json:"cpc"`
	CTR          string `json:"ctr"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}
