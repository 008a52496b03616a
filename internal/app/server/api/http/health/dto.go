package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	OK      bool   `json:"ok" example:"true" doc:"Сервис доступен"`
	Service string `json:"service" example:"NCE Error Management API" doc:"Имя сервиса"`
}
