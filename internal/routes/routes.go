package routes

const (
	// Health / metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Auth
	UsersRegister = "/users/register"
	UsersLogin    = "/users/login"
	UsersRefresh  = "/users/refresh"
	UsersLogout   = "/users/logout"

	ProtectedStaff = "/protected/staff"

	// Catalog
	Categorias    = "/categorias"
	CategoriaByID = "/categorias/{id:[0-9]+}"
	Zonas         = "/zonas"
	ZonaByID      = "/zonas/{id:[0-9]+}"
	Metrajes      = "/metrajes"
	MetrajeByID   = "/metrajes/{id:[0-9]+}"

	// Locales. Grupos must be registered before LocalByID.
	Locales       = "/locales"
	LocalesGrupos = "/locales/grupos"
	LocalByID     = "/locales/{id:[0-9]+}"

	// Clientes
	Clientes       = "/clientes"
	ClientesExport = "/clientes/export"
	ClienteByID    = "/clientes/{id:[0-9]+}"
)
