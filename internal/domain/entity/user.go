package entity

// User usuario de la empresa. El servicio solo lo consulta: como autor de un
// movimiento y como destinatario de alertas (managers con push token).
// BranchID distinto de nil restringe al usuario a esa sucursal.
type User struct {
	ID        int64
	CompanyID int64
	BranchID  *int64
	Name      string
	Lastname  string
	Role      string
	PushToken *string
}
