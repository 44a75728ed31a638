package model

type CalculationRequest struct {
	TenantID string      `json:"tenant_id"`
	Inputs   ModelInputs `json:"inputs"`
}

type BatchRequest struct {
	TenantID  string     `json:"tenant_id"`
	Scenarios []Scenario `json:"scenarios"`
}

type CompareRequest struct {
	TenantID string      `json:"tenant_id"`
	Base     ModelInputs `json:"base"`
	Alt      ModelInputs `json:"alt"`
}
