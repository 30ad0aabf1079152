package models

// Feedback é uma avaliação deixada por um participante após um leilão.
type Feedback struct {
	ID           int64    `json:"id"`
	Comentario   string   `json:"comentario"`
	Nota         int      `json:"nota"`
	DataHora     DataHora `json:"dataHora"`
	Autor        *Pessoa  `json:"autor,omitempty"`
	Destinatario *Pessoa  `json:"destinatario,omitempty"`
}

// FeedbackCriacao é o payload de criação de feedback.
type FeedbackCriacao struct {
	Comentario     string `json:"comentario" binding:"required,max=500"`
	Nota           int    `json:"nota" binding:"required,min=1,max=5"`
	LeilaoID       int64  `json:"leilaoId" binding:"required"`
	DestinatarioID int64  `json:"destinatarioId" binding:"required"`
}
