package domain

type Customer struct {
	ID     int32  `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}
