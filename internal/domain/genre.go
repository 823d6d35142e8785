package domain

type Genre struct {
	ID   int32  `json:"_id"`
	Name string `json:"name"`
}
