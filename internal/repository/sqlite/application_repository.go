package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"rentaid/internal/common"
	"rentaid/internal/domain/application"
)

const timeFormat = time.RFC3339Nano

const applicationColumns = `id, full_name, phone, email, dob, gender, age,
	mothers_maiden_name, mothers_full_name, fathers_full_name, place_of_birth, city_of_birth,
	city, ssn, past_due_rent, applied_before, receiving_ss, verified_idme,
	dl_front, dl_back, submitted_at`

// Columns matched by Search, per the admin dashboard's search box.
var searchColumns = []string{
	"full_name", "email", "phone", "ssn", "city",
	"mothers_full_name", "fathers_full_name", "city_of_birth",
}

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.SubmittedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO applications (
		full_name, phone, email, dob, gender, age,
		mothers_maiden_name, mothers_full_name, fathers_full_name, place_of_birth, city_of_birth,
		city, ssn, past_due_rent, applied_before, receiving_ss, verified_idme,
		dl_front, dl_back, submitted_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.FullName, app.Phone, app.Email, app.DateOfBirth, app.Gender, app.Age,
		app.MothersMaidenName, app.MothersFullName, app.FathersFullName, app.PlaceOfBirth, app.CityOfBirth,
		app.City, app.SSN, app.PastDueRent, app.AppliedBefore, app.ReceivingSS, app.VerifiedIdentity,
		app.LicenseFront, app.LicenseBack, app.SubmittedAt.Format(timeFormat))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to save application", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to save application", err)
	}
	app.ID = id
	return &app, nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications
		ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) Search(ctx context.Context, term string) ([]application.Application, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	var clauses []string
	args := make([]any, 0, len(searchColumns))
	for _, column := range searchColumns {
		clauses = append(clauses, "LOWER("+column+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE `+strings.Join(clauses, " OR ")+`
		ORDER BY submitted_at DESC, id DESC`, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to search applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	if affected == 0 {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return nil
}

func (r *ApplicationRepository) Stats(ctx context.Context) (*application.Stats, error) {
	row := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(past_due_rent), 0),
		COALESCE(AVG(past_due_rent), 0),
		COUNT(CASE WHEN receiving_ss = ? THEN 1 END)
	FROM applications`, application.FlagYes)
	var stats application.Stats
	if err := row.Scan(&stats.TotalApplications, &stats.TotalRentOwed, &stats.AvgRentOwed, &stats.ReceivingSocialSecurity); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to compute stats", err)
	}
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var age sql.NullInt64
	var rent sql.NullFloat64
	var maidenName, mothersName, fathersName, placeOfBirth, cityOfBirth, front, back sql.NullString
	var submittedAt string
	if err := row.Scan(&app.ID, &app.FullName, &app.Phone, &app.Email, &app.DateOfBirth, &app.Gender, &age,
		&maidenName, &mothersName, &fathersName, &placeOfBirth, &cityOfBirth,
		&app.City, &app.SSN, &rent, &app.AppliedBefore, &app.ReceivingSS, &app.VerifiedIdentity,
		&front, &back, &submittedAt); err != nil {
		return nil, err
	}
	if age.Valid {
		app.Age = &age.Int64
	}
	if rent.Valid {
		app.PastDueRent = &rent.Float64
	}
	app.MothersMaidenName = nullableString(maidenName)
	app.MothersFullName = nullableString(mothersName)
	app.FathersFullName = nullableString(fathersName)
	app.PlaceOfBirth = nullableString(placeOfBirth)
	app.CityOfBirth = nullableString(cityOfBirth)
	app.LicenseFront = nullableString(front)
	app.LicenseBack = nullableString(back)
	parsed, err := time.Parse(timeFormat, submittedAt)
	if err != nil {
		return nil, err
	}
	app.SubmittedAt = parsed
	return &app, nil
}

func scanApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read applications", err)
	}
	return items, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

// escapeLike makes the search term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
