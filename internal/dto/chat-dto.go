package dto

type ChatRequestDTO struct {
	Question       string `json:"question" validate:"required,min=3"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type ChatResponseDTO struct {
	ConversationID string          `json:"conversation_id"`
	Question       string          `json:"question"`
	GeneratedSQL   string          `json:"generated_sql"`
	Columns        []string        `json:"columns"`
	Rows           [][]interface{} `json:"rows"`
	RowCount       int             `json:"row_count"`
}
