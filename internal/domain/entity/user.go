package entity

// User usuario operador del sistema (actor de entradas y salidas).
type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	CPF   string
}

// Employee funcionario con acceso al sistema (login por CPF).
type Employee struct {
	ID           string
	Name         string
	Phone        string
	CPF          string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}
