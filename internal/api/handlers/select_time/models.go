package select_time

// SelectTimeRequest метка слота из списка снимка
type SelectTimeRequest struct {
	Label string `json:"label"`
}
