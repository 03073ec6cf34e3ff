package database

import (
	"betterfit-api/metrics"
	"betterfit-api/models"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const exercisesTable = "exercises"

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ==================== LISTING ====================

// likePattern turns a user value into a LIKE pattern matching it as a literal
// substring. '!' is the escape character on both supported engines.
func likePattern(value string) string {
	escaped := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(strings.ToLower(value))
	return "%" + escaped + "%"
}

// foldFunc names the SQL function that lowercases text with Unicode rules,
// matching strings.ToLower on the pattern side.
func foldFunc(driver string) string {
	if driver == DriverSQLite {
		return "ulower"
	}
	return "LOWER"
}

// buildListWhere composes the conjunctive WHERE clause for q. Empty filters
// are skipped.
func buildListWhere(q models.ListQuery, driver string) (string, []any) {
	where := []string{}
	args := []any{}
	fold := foldFunc(driver)

	if q.Target != "" {
		where = append(where, fold+"(COALESCE(muscle_group, '')) LIKE ? ESCAPE '!'")
		args = append(args, likePattern(q.Target))
	}
	if q.Equipment != "" {
		where = append(where, "equipment = ?")
		args = append(args, q.Equipment)
	}
	if q.Category != "" {
		where = append(where, "category = ?")
		args = append(args, q.Category)
	}
	if q.Difficulty != "" {
		where = append(where, "difficulty = ?")
		args = append(args, q.Difficulty)
	}
	if q.MuscleGroup != "" {
		where = append(where, "muscle_group = ?")
		args = append(args, q.MuscleGroup)
	}
	if q.Search != "" {
		where = append(where, fold+"(name) LIKE ? ESCAPE '!'")
		args = append(args, likePattern(q.Search))
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return cond, args
}

// ListExercises returns the page [Offset, Offset+Limit-1] of exercises matching
// q, ordered by name ascending. id breaks ties so pages are stable.
func (r *Repository) ListExercises(ctx context.Context, q models.ListQuery) (exercises []models.Exercise, err error) {
	defer observe("list", time.Now(), &err)

	cond, args := buildListWhere(q, r.db.Driver)
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(muscle_group, ''),
			COALESCE(equipment, ''), COALESCE(category, ''), COALESCE(difficulty, ''),
			calories_burned, created_at
		FROM exercises
		WHERE ` + cond + `
		ORDER BY name ASC, id ASC
		LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice so an empty page encodes as []
	exercises = make([]models.Exercise, 0)
	for rows.Next() {
		var e models.Exercise
		var calories sql.NullFloat64
		var createdAt sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.MuscleGroup,
			&e.Equipment, &e.Category, &e.Difficulty,
			&calories, &createdAt,
		); err != nil {
			return nil, err
		}
		if calories.Valid {
			e.CaloriesBurned = &calories.Float64
		}
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

// ==================== STATISTICS ====================

func (r *Repository) CategoryCounts(ctx context.Context) (counts []models.CategoryCount, err error) {
	defer observe("category_counts", time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, `SELECT COALESCE(category, 'null'), exercise_count FROM exercises_by_category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts = make([]models.CategoryCount, 0)
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.ExerciseCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *Repository) DifficultyCounts(ctx context.Context) (counts []models.DifficultyCount, err error) {
	defer observe("difficulty_counts", time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, `SELECT COALESCE(difficulty, 'null'), exercise_count FROM exercises_by_difficulty`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts = make([]models.DifficultyCount, 0)
	for rows.Next() {
		var d models.DifficultyCount
		if err := rows.Scan(&d.Difficulty, &d.ExerciseCount); err != nil {
			return nil, err
		}
		counts = append(counts, d)
	}

	return counts, rows.Err()
}

func (r *Repository) EquipmentValues(ctx context.Context) (values []sql.NullString, err error) {
	defer observe("equipment", time.Now(), &err)
	return r.stringColumn(ctx, "equipment")
}

func (r *Repository) MuscleGroupValues(ctx context.Context) (values []sql.NullString, err error) {
	defer observe("muscle_group", time.Now(), &err)
	return r.stringColumn(ctx, "muscle_group")
}

func (r *Repository) CaloriesValues(ctx context.Context) (values []sql.NullFloat64, err error) {
	defer observe("calories_burned", time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, `SELECT calories_burned FROM exercises`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values = make([]sql.NullFloat64, 0)
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// stringColumn projects one text column of every exercise. column is always
// a constant chosen by this package.
func (r *Repository) stringColumn(ctx context.Context, column string) ([]sql.NullString, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM exercises", column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]sql.NullString, 0)
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// ==================== LOADING ====================

// InsertExercises bulk-loads exercises in one transaction. It backs the seed
// command; the HTTP API never writes.
func (r *Repository) InsertExercises(ctx context.Context, exercises []models.Exercise) (err error) {
	defer observe("insert", time.Now(), &err)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exercises (name, description, muscle_group, equipment, category, difficulty, calories_burned, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range exercises {
		e := &exercises[i]
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		res, err := stmt.ExecContext(ctx,
			e.Name, nullIfEmpty(e.Description), nullIfEmpty(e.MuscleGroup), nullIfEmpty(e.Equipment),
			nullIfEmpty(e.Category), nullIfEmpty(e.Difficulty), e.CaloriesBurned, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert exercise %q: %w", e.Name, err)
		}
		if id, err := res.LastInsertId(); err == nil {
			e.ID = id
		}
	}

	return tx.Commit()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDBQuery(operation, exercisesTable, time.Since(start), *err)
}
