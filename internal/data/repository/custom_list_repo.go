package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomListRepository interface {
	Create(ctx context.Context, list *entity.CustomList) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CustomListWithCount, error)
	FindByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.CustomListDetail, error)
	FindPublic(ctx context.Context, limit int) ([]*entity.CustomListWithUserAndCount, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch *entity.CustomListUpdate) (*entity.CustomList, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	AddMovie(ctx context.Context, listID, movieID, userID uuid.UUID) (*entity.CustomListMovie, error)
	RemoveMovie(ctx context.Context, listID, movieID, userID uuid.UUID) error
}

type customListRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomListRepository(db database.PgxIface, log *zap.Logger) CustomListRepository {
	return &customListRepository{
		db:  db,
		log: log.With(zap.String("repository", "custom_list")),
	}
}

func (r *customListRepository) Create(ctx context.Context, list *entity.CustomList) error {
	query := `
		INSERT INTO custom_lists (id, user_id, name, description, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		list.ID,
		list.UserID,
		list.Name,
		list.Description,
		list.IsPublic,
		list.CreatedAt,
		list.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create custom list",
			zap.Error(err),
			zap.String("user_id", list.UserID.String()),
			zap.String("name", list.Name),
		)
		return fmt.Errorf("create custom list %q: %w", list.Name, err)
	}

	return nil
}

// FindByUserID returns the owner's lists with per-list movie counts, newest-first.
func (r *customListRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CustomListWithCount, error) {
	query := `
		SELECT l.id, l.user_id, l.name, l.description, l.is_public, l.created_at, l.updated_at,
		       COUNT(clm.id) AS movie_count
		FROM custom_lists l
		LEFT JOIN custom_list_movies clm ON clm.list_id = l.id
		WHERE l.user_id = $1
		GROUP BY l.id
		ORDER BY l.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find custom lists by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find custom lists for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var lists []*entity.CustomListWithCount
	for rows.Next() {
		var list entity.CustomListWithCount
		err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Name,
			&list.Description,
			&list.IsPublic,
			&list.CreatedAt,
			&list.UpdatedAt,
			&list.MovieCount,
		)
		if err != nil {
			r.log.Error("Failed to scan custom list row", zap.Error(err))
			return nil, fmt.Errorf("scan custom list row: %w", err)
		}
		lists = append(lists, &list)
	}

	return lists, rows.Err()
}

// FindByID returns one list with every member movie and its added timestamp.
// Private lists are visible to their owner only; everyone else gets not-found.
func (r *customListRepository) FindByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.CustomListDetail, error) {
	listQuery := `
		SELECT id, user_id, name, description, is_public, created_at, updated_at
		FROM custom_lists
		WHERE id = $1 AND (is_public = TRUE OR user_id = $2)
	`

	var detail entity.CustomListDetail
	err := r.db.QueryRow(ctx, listQuery, id, viewerID).Scan(
		&detail.ID,
		&detail.UserID,
		&detail.Name,
		&detail.Description,
		&detail.IsPublic,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find custom list by ID",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return nil, fmt.Errorf("find custom list by ID %s: %w", id.String(), err)
	}

	entriesQuery := `
		SELECT clm.id, clm.added_at,
		       m.id, m.imdb_id, m.title, m.year, m.poster_url, m.plot, m.genre,
		       m.director, m.actors, m.imdb_rating, m.created_at, m.updated_at
		FROM custom_list_movies clm
		JOIN movies m ON m.id = clm.movie_id
		WHERE clm.list_id = $1
		ORDER BY clm.added_at ASC
	`

	rows, err := r.db.Query(ctx, entriesQuery, id)
	if err != nil {
		r.log.Error("Failed to find custom list movies",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return nil, fmt.Errorf("find movies for custom list %s: %w", id.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry entity.CustomListEntry
		err := rows.Scan(
			&entry.ID,
			&entry.AddedAt,
			&entry.Movie.ID,
			&entry.Movie.IMDBID,
			&entry.Movie.Title,
			&entry.Movie.Year,
			&entry.Movie.PosterURL,
			&entry.Movie.Plot,
			&entry.Movie.Genre,
			&entry.Movie.Director,
			&entry.Movie.Actors,
			&entry.Movie.IMDBRating,
			&entry.Movie.CreatedAt,
			&entry.Movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan custom list entry", zap.Error(err))
			return nil, fmt.Errorf("scan custom list entry: %w", err)
		}
		detail.Entries = append(detail.Entries, entry)
	}

	return &detail, rows.Err()
}

// FindPublic returns the newest public lists with owner projection and counts.
func (r *customListRepository) FindPublic(ctx context.Context, limit int) ([]*entity.CustomListWithUserAndCount, error) {
	query := `
		SELECT l.id, l.user_id, l.name, l.description, l.is_public, l.created_at, l.updated_at,
		       p.username, p.display_name, p.avatar_url,
		       COUNT(clm.id) AS movie_count
		FROM custom_lists l
		JOIN profiles p ON p.id = l.user_id
		LEFT JOIN custom_list_movies clm ON clm.list_id = l.id
		WHERE l.is_public = TRUE
		GROUP BY l.id, p.username, p.display_name, p.avatar_url
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find public custom lists",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find public custom lists: %w", err)
	}
	defer rows.Close()

	var lists []*entity.CustomListWithUserAndCount
	for rows.Next() {
		var list entity.CustomListWithUserAndCount
		err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Name,
			&list.Description,
			&list.IsPublic,
			&list.CreatedAt,
			&list.UpdatedAt,
			&list.User.Username,
			&list.User.DisplayName,
			&list.User.AvatarURL,
			&list.MovieCount,
		)
		if err != nil {
			r.log.Error("Failed to scan public custom list row", zap.Error(err))
			return nil, fmt.Errorf("scan public custom list row: %w", err)
		}
		lists = append(lists, &list)
	}

	return lists, rows.Err()
}

// Update patches name, description and visibility only, owner scoped.
func (r *customListRepository) Update(ctx context.Context, id, userID uuid.UUID, patch *entity.CustomListUpdate) (*entity.CustomList, error) {
	query := `
		UPDATE custom_lists
		SET name        = COALESCE($3, name),
		    description = COALESCE($4, description),
		    is_public   = COALESCE($5, is_public),
		    updated_at  = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, description, is_public, created_at, updated_at
	`

	var list entity.CustomList
	err := r.db.QueryRow(ctx, query, id, userID,
		patch.Name,
		patch.Description,
		patch.IsPublic,
	).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.Description,
		&list.IsPublic,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to update custom list",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return nil, fmt.Errorf("update custom list %s: %w", id.String(), err)
	}

	return &list, nil
}

// Delete removes the list; the FK cascade drops its membership entries.
func (r *customListRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM custom_lists WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete custom list",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return fmt.Errorf("delete custom list %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	r.log.Info("Custom list deleted", zap.String("list_id", id.String()))
	return nil
}

// AddMovie inserts a membership entry, but only when the acting user owns
// the list. A foreign list behaves as not-found.
func (r *customListRepository) AddMovie(ctx context.Context, listID, movieID, userID uuid.UUID) (*entity.CustomListMovie, error) {
	query := `
		INSERT INTO custom_list_movies (id, list_id, movie_id, added_at)
		SELECT $1, $2, $3, NOW()
		WHERE EXISTS (
			SELECT 1 FROM custom_lists WHERE id = $2 AND user_id = $4
		)
		RETURNING id, list_id, movie_id, added_at
	`

	var entry entity.CustomListMovie
	err := r.db.QueryRow(ctx, query, uuid.New(), listID, movieID, userID).Scan(
		&entry.ID,
		&entry.ListID,
		&entry.MovieID,
		&entry.AddedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to add movie to custom list",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("add movie %s to list %s: %w", movieID.String(), listID.String(), err)
	}

	return &entry, nil
}

func (r *customListRepository) RemoveMovie(ctx context.Context, listID, movieID, userID uuid.UUID) error {
	query := `
		DELETE FROM custom_list_movies clm
		USING custom_lists l
		WHERE clm.list_id = l.id
		  AND clm.list_id = $1
		  AND clm.movie_id = $2
		  AND l.user_id = $3
	`

	result, err := r.db.Exec(ctx, query, listID, movieID, userID)
	if err != nil {
		r.log.Error("Failed to remove movie from custom list",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("remove movie %s from list %s: %w", movieID.String(), listID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}
