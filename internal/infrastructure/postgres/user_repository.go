package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
)

// UserRepo implementación de UserRepository sobre usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nome, email, celular, cpf`

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `INSERT INTO usuarios (`+userColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.Phone, u.CPF)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CPF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, search string) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM usuarios WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CPF); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	err := affectedOne(r.q.Exec(ctx,
		`UPDATE usuarios SET nome = $2, email = $3, celular = $4, cpf = $5 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Phone, u.CPF))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update usuario: %w", err)
	}
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return err
}

// EmployeeRepo implementación de EmployeeRepository sobre funcionarios.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, nome, telefone, cpf, senha`

func (r *EmployeeRepo) getOne(ctx context.Context, where string, arg string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM funcionarios WHERE `+where, arg).
		Scan(&e.ID, &e.Name, &e.Phone, &e.CPF, &e.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `INSERT INTO funcionarios (`+employeeColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Name, e.Phone, e.CPF, e.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.getOne(ctx, "id = $1", id)
}

// FindByCPF usado por el login; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByCPF(ctx context.Context, cpf string) (*entity.Employee, error) {
	return r.getOne(ctx, "cpf = $1", cpf)
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM funcionarios ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Employee, 0)
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.CPF, &e.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	err := affectedOne(r.q.Exec(ctx,
		`UPDATE funcionarios SET nome = $2, telefone = $3, cpf = $4, senha = $5 WHERE id = $1`,
		e.ID, e.Name, e.Phone, e.CPF, e.PasswordHash))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("update funcionario: %w", err)
		}
	}
	return err
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM funcionarios WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete funcionario: %w", err)
	}
	return err
}
