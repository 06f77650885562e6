package mysql

import (
	"context"
	"database/sql"

	"staybook/internal/domain"
)

type LocationRepo struct{ db *sql.DB }

func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRowContext(ctx, getLocationSQL, id).Scan(&l.ID, &l.CityName, &l.CityCode, &l.CountryID)
	if err == sql.ErrNoRows {
		return domain.Location{}, domain.E(domain.KindNotFound, domain.CodeLocationNotFound, "location not found")
	}
	if err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func (r *LocationRepo) GetByCityName(ctx context.Context, city string) (domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRowContext(ctx, getLocationByCitySQL, city).Scan(&l.ID, &l.CityName, &l.CityCode, &l.CountryID)
	if err == sql.ErrNoRows {
		return domain.Location{}, domain.Ef(domain.KindNotFound, domain.CodeLocationNotFound,
			"no location for city %q", city)
	}
	if err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func (r *LocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	return r.list(ctx, listLocationsSQL)
}

func (r *LocationRepo) ListByCountry(ctx context.Context, countryID int64) ([]domain.Location, error) {
	return r.list(ctx, listLocationsByCountrySQL, countryID)
}

func (r *LocationRepo) list(ctx context.Context, q string, args ...any) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.CityName, &l.CityCode, &l.CountryID); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LocationRepo) ExistsByCityName(ctx context.Context, city string, countryID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, locationExistsByNameSQL, city, countryID).Scan(&exists)
	return exists, err
}

func (r *LocationRepo) ExistsByCityCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, locationExistsByCodeSQL, code).Scan(&exists)
	return exists, err
}

func (r *LocationRepo) Create(ctx context.Context, l domain.Location) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertLocationSQL, l.CityName, l.CityCode, l.CountryID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type CountryRepo struct{ db *sql.DB }

func NewCountryRepo(db *sql.DB) *CountryRepo { return &CountryRepo{db: db} }

func (r *CountryRepo) GetByID(ctx context.Context, id int64) (domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRowContext(ctx, getCountrySQL, id).Scan(&c.ID, &c.Name, &c.Code)
	if err == sql.ErrNoRows {
		return domain.Country{}, domain.E(domain.KindNotFound, domain.CodeCountryNotFound, "country not found")
	}
	if err != nil {
		return domain.Country{}, err
	}
	return c, nil
}

func (r *CountryRepo) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.QueryContext(ctx, listCountriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CountryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, countryExistsByNameSQL, name).Scan(&exists)
	return exists, err
}

func (r *CountryRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, countryExistsByCodeSQL, code).Scan(&exists)
	return exists, err
}

func (r *CountryRepo) Create(ctx context.Context, c domain.Country) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertCountrySQL, c.Name, c.Code)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
