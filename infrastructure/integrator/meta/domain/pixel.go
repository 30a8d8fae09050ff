package metadomain

// Pixel é um pixel de rastreamento vinculado à conta de anúncios
type Pixel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PixelStat é uma leitura de processamento de eventos de um pixel em um
// intervalo
type PixelStat struct {
	StartTime       string `json:"start_time"`
	EventsReceived  int    `json:"events_received"`
	EventsDropped   int    `json:"events_dropped"`
	EventsDuplicate int    `json:"events_duplicate"`
	EventsMatched   int    `json:"events_matched"`
}
