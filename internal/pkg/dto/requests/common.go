package requests

type Pagination struct {
	Page     int
	PageSize int
}

type DateRange struct {
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date" validate:"required,dateonly"`
}
