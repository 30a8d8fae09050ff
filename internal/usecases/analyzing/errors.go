package analyzing

import (
	"fmt"
	"time"
)

// ModelOutputError indica que o modelo respondeu, mas fora do formato JSON
// exigido. Nesse caso nada é persistido para a data.
type ModelOutputError struct {
	Date   time.Time
	Reason string
}

func (e *ModelOutputError) Error() string {
	return fmt.Sprintf(
		"resposta do modelo fora do formato esperado para %s: %s",
		e.Date.Format("2006-01-02"), e.Reason,
	)
}
