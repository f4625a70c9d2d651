package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresRepository calls the membership stored functions. Every function
// reports an integer status code; the repository returns that code verbatim
// and reserves the error return for transport failures.
type PostgresRepository struct {
	db      PgxIface
	timeout time.Duration
}

// NewPostgresRepository binds the repository to a pool (or mock) with the
// configured per-call command timeout.
func NewPostgresRepository(db PgxIface, commandTimeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, timeout: commandTimeout}
}

func (r *PostgresRepository) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// ProbeSchemaVersion issues one compatibility probe for a feature name.
func (r *PostgresRepository) ProbeSchemaVersion(ctx context.Context, feature string) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_check_schema_version($1)`, feature).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to probe schema version: %w", err)
	}
	return status, nil
}

// GetUserAuth fetches the credential record in a single call, optionally
// touching the last-activity timestamp as a side effect of the same call.
func (r *PostgresRepository) GetUserAuth(ctx context.Context, req domain.GetUserAuthRequest) (*domain.UserAuthState, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `
		SELECT status, password, password_answer, salt, format,
		       failed_password_attempts, failed_answer_attempts,
		       is_approved, is_locked_out, last_login_at, last_activity_at
		FROM membership_get_user_auth($1, $2)
	`
	row := r.db.QueryRow(ctx, query, req.UserName, req.UpdateLastActivity)

	var (
		state  domain.UserAuthState
		status int
		format int
	)
	err := row.Scan(&status, &state.Password, &state.PasswordAnswer, &state.Salt, &format,
		&state.FailedPasswordAttempts, &state.FailedAnswerAttempts,
		&state.IsApproved, &state.IsLockedOut, &state.LastLoginAt, &state.LastActivityAt)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user auth state: %w", err)
	}
	if status != 0 {
		return nil, status, nil
	}
	state.Format = domain.PasswordFormat(format)

	return &state, status, nil
}

// UpdateAuthState applies the post-attempt bookkeeping atomically in the
// store: counter increment or reset, lockout threshold evaluation, and
// timestamp updates on success.
func (r *PostgresRepository) UpdateAuthState(ctx context.Context, req domain.UpdateAuthStateRequest) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_update_auth_state($1, $2, $3, $4, $5, $6)`,
		req.UserName, req.PasswordCorrect, req.IsPasswordAttempt,
		req.MaxInvalidAttempts, req.AttemptWindowMin, req.UpdateLastLogin).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to update auth state: %w", err)
	}
	return status, nil
}

// CreateUser issues the single creation call and returns the server-assigned
// values next to the status code.
func (r *PostgresRepository) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.CreateUserResponse, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `
		SELECT status, user_id, created_at
		FROM membership_create_user($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	row := r.db.QueryRow(ctx, query,
		req.ID, req.UserName, req.Email, req.EncodedPassword, req.EncodedAnswer,
		req.PasswordQuestion, req.Salt, int(req.Format), req.IsApproved,
		req.RequiresUniqueEmail, req.CreatedAt)

	var resp domain.CreateUserResponse
	if err := row.Scan(&resp.Status, &resp.ID, &resp.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &resp, nil
}

// SetPassword writes a new encoded password, optionally resetting the
// failure counters with successful-login semantics.
func (r *PostgresRepository) SetPassword(ctx context.Context, req domain.SetPasswordRequest) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_set_password($1, $2, $3)`,
		req.UserName, req.EncodedPassword, req.ResetCounters).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to set password: %w", err)
	}
	return status, nil
}

// ChangeQuestionAnswer updates the password question and encoded answer.
func (r *PostgresRepository) ChangeQuestionAnswer(ctx context.Context, req domain.ChangeQuestionAnswerRequest) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_change_question_answer($1, $2, $3)`,
		req.UserName, req.PasswordQuestion, req.EncodedAnswer).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to change question and answer: %w", err)
	}
	return status, nil
}

// GetPassword fetches the stored encoded password. The store validates the
// encoded answer itself and counts a wrong answer against the answer-failure
// counter.
func (r *PostgresRepository) GetPassword(ctx context.Context, req domain.GetPasswordRequest) (*domain.GetPasswordResponse, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `SELECT status, password FROM membership_get_password($1, $2, $3, $4, $5)`
	row := r.db.QueryRow(ctx, query,
		req.UserName, req.EncodedAnswer, req.RequiresAnswer,
		req.MaxInvalidAttempts, req.AttemptWindowMin)

	var resp domain.GetPasswordResponse
	if err := row.Scan(&resp.Status, &resp.EncodedPassword); err != nil {
		return nil, fmt.Errorf("failed to get password: %w", err)
	}
	return &resp, nil
}

const userColumns = `status, user_id, username, email, password_question, comment,
	       is_approved, is_locked_out, created_at, last_login_at,
	       last_activity_at, last_password_changed_at, last_lockout_at`

func scanUser(row pgx.Row) (*domain.MembershipUser, int, error) {
	var (
		u      domain.MembershipUser
		status int
	)
	err := row.Scan(&status, &u.ID, &u.UserName, &u.Email, &u.PasswordQuestion, &u.Comment,
		&u.IsApproved, &u.IsLockedOut, &u.CreatedAt, &u.LastLoginAt,
		&u.LastActivityAt, &u.LastPasswordChangedAt, &u.LastLockoutAt)
	if err != nil {
		return nil, 0, err
	}
	if status != 0 {
		return nil, status, nil
	}
	return &u, status, nil
}

// GetUserByName fetches a user record, optionally touching last-activity.
func (r *PostgresRepository) GetUserByName(ctx context.Context, username string, updateActivity bool) (*domain.MembershipUser, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM membership_get_user_by_name($1, $2)`
	user, status, err := scanUser(r.db.QueryRow(ctx, query, username, updateActivity))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user by name: %w", err)
	}
	return user, status, nil
}

// GetUserByID fetches a user record by its server-assigned identifier.
func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*domain.MembershipUser, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM membership_get_user_by_id($1)`
	user, status, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, status, nil
}

// GetUserNameByEmail resolves the username owning an e-mail address.
func (r *PostgresRepository) GetUserNameByEmail(ctx context.Context, email string) (string, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var (
		status   int
		username string
	)
	err := r.db.QueryRow(ctx, `SELECT status, username FROM membership_get_username_by_email($1)`, email).
		Scan(&status, &username)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get username by email: %w", err)
	}
	return username, status, nil
}

// UpdateUser writes the mutable profile fields of a user record.
func (r *PostgresRepository) UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_update_user($1, $2, $3, $4, $5)`,
		req.UserName, req.Email, req.Comment, req.IsApproved, req.RequiresUniqueEmail).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return status, nil
}

// DeleteUser removes a user record and its role assignments.
func (r *PostgresRepository) DeleteUser(ctx context.Context, username string) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_delete_user($1)`, username).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return status, nil
}

// UnlockUser clears the lockout flag and failure counters.
func (r *PostgresRepository) UnlockUser(ctx context.Context, username string, at time.Time) (int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	var status int
	err := r.db.QueryRow(ctx, `SELECT membership_unlock_user($1, $2)`, username, at).Scan(&status)
	if err != nil {
		return 0, fmt.Errorf("failed to unlock user: %w", err)
	}
	return status, nil
}

// GetAllUsers returns one page of user records and the total record count.
func (r *PostgresRepository) GetAllUsers(ctx context.Context, pageIndex, pageSize int) ([]domain.MembershipUser, int, error) {
	ctx, cancel := r.callCtx(ctx)
	defer cancel()

	query := `
		SELECT total_count, user_id, username, email, password_question, comment,
		       is_approved, is_locked_out, created_at, last_login_at,
		       last_activity_at, last_password_changed_at, last_lockout_at
		FROM membership_get_all_users($1, $2)
	`
	rows, err := r.db.Query(ctx, query, pageIndex, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	var (
		users []domain.MembershipUser
		total int
	)
	for rows.Next() {
		var u domain.MembershipUser
		err := rows.Scan(&total, &u.ID, &u.UserName, &u.Email, &u.PasswordQuestion, &u.Comment,
			&u.IsApproved, &u.IsLockedOut, &u.CreatedAt, &u.LastLoginAt,
			&u.LastActivityAt, &u.LastPasswordChangedAt, &u.LastLockoutAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, total, nil
}
