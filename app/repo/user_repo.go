package repo

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByHandle(handle string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindAll(page, limit int, search, sortBy, order string) ([]model.User, int64, error)
	Update(user *model.User) error
	AddBlacklistToken(token model.BlacklistedToken) error
	ClearRefreshToken(userID uuid.UUID) error
	Leaderboard(limit int) ([]model.LeaderboardEntryDTO, error)
	Count() (int64, error)
}

type UserRepo struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

func NewUserRepo(db *gorm.DB, sqlDB *sql.DB) *UserRepo {
	return &UserRepo{DB: db, sqlDB: sqlDB}
}

var userSortWhitelist = map[string]string{
	"created_at": "created_at",
	"handle":     "handle",
	"email":      "email",
	"name":       "name",
}

func (r *UserRepo) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ? AND is_active = true", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByHandle(handle string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("handle = ? AND is_active = true", handle).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("EarnedBadges.Badge").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindAll(page, limit int, search, sortBy, order string) ([]model.User, int64, error) {
	column, ok := userSortWhitelist[sortBy]
	if !ok {
		column = "created_at"
	}
	if strings.ToLower(order) != "asc" {
		order = "desc"
	}

	query := r.DB.Model(&model.User{}).Where("is_active = true")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("handle ILIKE ? OR name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order(column + " " + order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepo) AddBlacklistToken(token model.BlacklistedToken) error {
	return r.DB.Create(&token).Error
}

func (r *UserRepo) ClearRefreshToken(userID uuid.UUID) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("refresh_token", "").Error
}

func (r *UserRepo) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.User{}).Where("is_active = true").Count(&total).Error
	return total, err
}

// Leaderboard ranks public, active users by their summed approved points.
// The aggregate comes back in the store's summed-points wrapper and is
// flattened by the DTO mapper, which also decides what is safe to expose.
func (r *UserRepo) Leaderboard(limit int) ([]model.LeaderboardEntryDTO, error) {
	rows, err := r.sqlDB.Query(`
		SELECT u.id, SUM(s.points_awarded) AS points
		FROM users u
		LEFT JOIN submission_refs s ON s.user_id = u.id AND s.status = $1
		WHERE u.is_public = true AND u.is_active = true
		GROUP BY u.id
		ORDER BY COALESCE(SUM(s.points_awarded), 0) DESC, u.created_at ASC
		LIMIT $2`,
		string(model.StatusApproved), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type rankedRow struct {
		id  uuid.UUID
		agg *model.PointsAggregate
	}

	var ranked []rankedRow
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		var points sql.NullInt64
		if err := rows.Scan(&id, &points); err != nil {
			return nil, err
		}
		agg := &model.PointsAggregate{}
		if points.Valid {
			p := int(points.Int64)
			agg.Sum = &model.PointsSum{Points: &p}
		}
		ranked = append(ranked, rankedRow{id: id, agg: agg})
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []model.LeaderboardEntryDTO{}, nil
	}

	var users []model.User
	if err := r.DB.Preload("EarnedBadges.Badge").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	entries := make([]model.LeaderboardEntryDTO, 0, len(ranked))
	for i, row := range ranked {
		user, ok := byID[row.id]
		if !ok {
			continue
		}
		entries = append(entries, model.ToLeaderboardEntryDTO(i+1, user, row.agg))
	}
	return entries, nil
}
