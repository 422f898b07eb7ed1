package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cvlm/crm-backend/internal/models"
)

// profileRow is the relational shape of one profile. The position
// column preserves collection order (newest first); the nested
// sequences land in jsonb.
type profileRow struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey"`
	Position int    `gorm:"column:position;type:integer;index"`

	FullName     string `gorm:"column:full_name;type:text"`
	JobTitle     string `gorm:"column:job_title;type:text"`
	Email        string `gorm:"column:email;type:text"`
	Phone        string `gorm:"column:phone;type:text"`
	Location     string `gorm:"column:location;type:text"`
	Nationality  string `gorm:"column:nationality;type:text"`
	BirthYear    string `gorm:"column:birth_year;type:text"`
	PortfolioURL string `gorm:"column:portfolio_url;type:text"`
	Summary      string `gorm:"column:summary;type:text"`

	Skills         pq.StringArray `gorm:"column:skills;type:text[]"`
	Certifications pq.StringArray `gorm:"column:certifications;type:text[]"`
	Interests      pq.StringArray `gorm:"column:interests;type:text[]"`
	References     pq.StringArray `gorm:"column:references;type:text[]"`

	Experience datatypes.JSON `gorm:"column:experience;type:jsonb"`
	Education  datatypes.JSON `gorm:"column:education;type:jsonb"`
	Requests   datatypes.JSON `gorm:"column:requests;type:jsonb"`

	OwnPromoCode string    `gorm:"column:own_promo_code;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz"`
}

func (profileRow) TableName() string { return "profiles" }

// ProfileStore snapshots the collection as one row per profile. Save
// rewrites the whole table in a transaction so the snapshot always
// matches the in-memory collection exactly.
type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) (*ProfileStore, error) {
	if err := db.AutoMigrate(&profileRow{}); err != nil {
		return nil, err
	}
	return &ProfileStore{db: db}, nil
}

func (s *ProfileStore) Load(ctx context.Context) ([]models.Profile, error) {
	var rows []profileRow
	if err := s.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := rowToProfile(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (s *ProfileStore) Save(ctx context.Context, profiles []models.Profile) error {
	rows := make([]profileRow, 0, len(profiles))
	for i, p := range profiles {
		row, err := profileToRow(p, i)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM profiles").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func profileToRow(p models.Profile, position int) (profileRow, error) {
	experience, err := json.Marshal(p.Experience)
	if err != nil {
		return profileRow{}, err
	}
	education, err := json.Marshal(p.Education)
	if err != nil {
		return profileRow{}, err
	}
	requests, err := json.Marshal(p.Requests)
	if err != nil {
		return profileRow{}, err
	}

	return profileRow{
		ID:             p.ID,
		Position:       position,
		FullName:       p.FullName,
		JobTitle:       p.JobTitle,
		Email:          p.Email,
		Phone:          p.Phone,
		Location:       p.Location,
		Nationality:    p.Nationality,
		BirthYear:      p.BirthYear,
		PortfolioURL:   p.PortfolioURL,
		Summary:        p.Summary,
		Skills:         pq.StringArray(p.Skills),
		Certifications: pq.StringArray(p.Certifications),
		Interests:      pq.StringArray(p.Interests),
		References:     pq.StringArray(p.References),
		Experience:     datatypes.JSON(experience),
		Education:      datatypes.JSON(education),
		Requests:       datatypes.JSON(requests),
		OwnPromoCode:   p.OwnPromoCode,
		CreatedAt:      p.CreatedAt,
	}, nil
}

func rowToProfile(row profileRow) (models.Profile, error) {
	p := models.Profile{
		ID:             row.ID,
		FullName:       row.FullName,
		JobTitle:       row.JobTitle,
		Email:          row.Email,
		Phone:          row.Phone,
		Location:       row.Location,
		Nationality:    row.Nationality,
		BirthYear:      row.BirthYear,
		PortfolioURL:   row.PortfolioURL,
		Summary:        row.Summary,
		Skills:         []string(row.Skills),
		Certifications: []string(row.Certifications),
		Interests:      []string(row.Interests),
		References:     []string(row.References),
		Experience:     []models.Experience{},
		Education:      []models.Education{},
		Requests:       []models.Request{},
		OwnPromoCode:   row.OwnPromoCode,
		CreatedAt:      row.CreatedAt,
	}

	if len(row.Experience) > 0 {
		if err := json.Unmarshal(row.Experience, &p.Experience); err != nil {
			return models.Profile{}, err
		}
	}
	if len(row.Education) > 0 {
		if err := json.Unmarshal(row.Education, &p.Education); err != nil {
			return models.Profile{}, err
		}
	}
	if len(row.Requests) > 0 {
		if err := json.Unmarshal(row.Requests, &p.Requests); err != nil {
			return models.Profile{}, err
		}
	}
	return p, nil
}
