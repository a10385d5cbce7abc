package orgunit

type CreateUnitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

type UpdateUnitRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=120"`
	Active *bool   `json:"active"`
}

type UnitResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
