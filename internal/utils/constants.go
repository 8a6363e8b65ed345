package utils

const (
	OrganizationName    = "Plaza Comercial"
	CORSAllowAllOrigins = "*"
)
