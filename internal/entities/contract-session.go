package entities

import "time"

// ContractSession - анкета одного интерактивного редактирования вместе с памятью
// об автоматически рассчитанном итоге.
type ContractSession struct {
	ID            string    `json:"id"`
	Record        Record    `json:"record"`
	LastAutoTotal string    `json:"last_auto_total"`
	CreatedBy     uint64    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
