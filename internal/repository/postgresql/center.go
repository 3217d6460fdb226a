package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/center"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type centerRepository struct {
	db *database.DB
}

func NewCenterRepository(db *database.DB) center.CenterRepository {
	return &centerRepository{db: db}
}

func (r *centerRepository) Create(ctx context.Context, c *center.Center) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO centers (id, name, address, phone, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.Address, c.Phone, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create center: %w", err)
	}
	return nil
}

func (r *centerRepository) GetByID(ctx context.Context, id string) (center.Center, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, phone, is_active, created_at, updated_at
		FROM centers
		WHERE id = $1
	`

	var c center.Center
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return center.Center{}, center.ErrCenterNotFound
		}
		return center.Center{}, fmt.Errorf("failed to get center: %w", err)
	}
	return c, nil
}

func (r *centerRepository) List(ctx context.Context, activeOnly bool) ([]center.Center, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, phone, is_active, created_at, updated_at
		FROM centers
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list centers: %w", err)
	}
	defer rows.Close()

	var centers []center.Center
	for rows.Next() {
		var c center.Center
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan center: %w", err)
		}
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func (r *centerRepository) ListWithCounts(ctx context.Context) ([]center.Center, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.address, c.phone, c.is_active, c.created_at, c.updated_at,
			   COUNT(DISTINCT u.id) AS trainer_count,
			   COUNT(DISTINCT m.id) AS member_count
		FROM centers c
		LEFT JOIN users u ON u.center_id = c.id AND u.status = 'active'
		LEFT JOIN members m ON m.center_id = c.id AND m.status = 'active'
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list centers with counts: %w", err)
	}
	defer rows.Close()

	var centers []center.Center
	for rows.Next() {
		var c center.Center
		var trainerCount, memberCount int
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt, &trainerCount, &memberCount); err != nil {
			return nil, fmt.Errorf("failed to scan center: %w", err)
		}
		c.TrainerCount = &trainerCount
		c.MemberCount = &memberCount
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func (r *centerRepository) Update(ctx context.Context, c *center.Center) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE centers SET name = $2, address = $3, phone = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, c.ID, c.Name, c.Address, c.Phone, c.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update center: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return center.ErrCenterNotFound
	}
	return nil
}

func (r *centerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete center: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return center.ErrCenterNotFound
	}
	return nil
}

const imageColumns = `id, center_id, image_name, image_path, is_main, sort_order, created_at`

func scanImage(row pgx.Row) (center.Image, error) {
	var img center.Image
	err := row.Scan(&img.ID, &img.CenterID, &img.ImageName, &img.ImagePath,
		&img.IsMain, &img.SortOrder, &img.CreatedAt)
	return img, err
}

func (r *centerRepository) CreateImage(ctx context.Context, img *center.Image) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO center_images (id, center_id, image_name, image_path, is_main, sort_order)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, img.CenterID, img.ImageName, img.ImagePath, img.IsMain, img.SortOrder).
		Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create center image: %w", err)
	}
	return nil
}

func (r *centerRepository) GetImageByID(ctx context.Context, id string) (center.Image, error) {
	q := GetQuerier(ctx, r.db)

	img, err := scanImage(q.QueryRow(ctx,
		`SELECT `+imageColumns+` FROM center_images WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return center.Image{}, center.ErrCenterImageNotFound
		}
		return center.Image{}, fmt.Errorf("failed to get center image: %w", err)
	}
	return img, nil
}

func (r *centerRepository) ListImages(ctx context.Context, centerID string) ([]center.Image, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + imageColumns + `
		FROM center_images
		WHERE center_id = $1
		ORDER BY is_main DESC, sort_order, created_at
	`

	rows, err := q.Query(ctx, query, centerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list center images: %w", err)
	}
	defer rows.Close()

	var images []center.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan center image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *centerRepository) SetMainImage(ctx context.Context, centerID, imageID string) error {
	q := GetQuerier(ctx, r.db)

	// One statement so the main flag moves atomically within the center.
	query := `
		UPDATE center_images SET is_main = (id = $2)
		WHERE center_id = $1
	`

	if _, err := q.Exec(ctx, query, centerID, imageID); err != nil {
		return fmt.Errorf("failed to set main center image: %w", err)
	}
	return nil
}

func (r *centerRepository) DeleteImage(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM center_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete center image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return center.ErrCenterImageNotFound
	}
	return nil
}
