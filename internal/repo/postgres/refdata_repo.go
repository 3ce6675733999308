package postgres

import (
	"context"
	"encoding/json"

	"github.com/chaiwat/seminarhub/internal/cache"
	"github.com/chaiwat/seminarhub/internal/domain/refdata"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const catalogCacheKey = "refdata:catalog:v1"

// RefdataRepo serves the wizard's static catalogs behind a cache. The
// catalogs change through the back office, rarely, so a short TTL is enough.
type RefdataRepo struct {
	pool  *pgxpool.Pool
	prom  *observability.Prom
	cache cache.Cache
}

func NewRefdataRepo(pool *pgxpool.Pool, prom *observability.Prom, c cache.Cache) *RefdataRepo {
	return &RefdataRepo{
		pool:  pool,
		prom:  prom,
		cache: c,
	}
}

func (repo *RefdataRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (repo *RefdataRepo) Catalog(ctx context.Context) (cat refdata.Catalog, err error) {
	if repo.cache != nil {
		if raw, ok := repo.cache.Get(ctx, catalogCacheKey); ok {
			if json.Unmarshal(raw, &cat) == nil {
				return
			}
		}
	}

	cat.OrgTypes, err = repo.listOrgTypes(ctx)
	if err != nil {
		return
	}

	cat.Provinces, err = repo.listProvinces(ctx)
	if err != nil {
		return
	}

	cat.Districts, err = repo.listDistricts(ctx)
	if err != nil {
		return
	}

	if repo.cache != nil {
		if raw, mErr := json.Marshal(cat); mErr == nil {
			repo.cache.Set(ctx, catalogCacheKey, raw)
		}
	}

	return
}

func (repo *RefdataRepo) listOrgTypes(ctx context.Context) (items []refdata.OrgType, err error) {
	var rows pgx.Rows

	err = repo.observe("refdata.list_org_types", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, name_th, name_en FROM organization_types ORDER BY sort_order ASC, id ASC
		`)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	items = make([]refdata.OrgType, 0)

	for rows.Next() {
		var o refdata.OrgType

		scanErr := rows.Scan(&o.ID, &o.NameTH, &o.NameEN)

		if scanErr != nil {
			err = scanErr
			return
		}
		items = append(items, o)
	}

	err = rows.Err()
	return
}

func (repo *RefdataRepo) listProvinces(ctx context.Context) (items []refdata.Province, err error) {
	var rows pgx.Rows

	err = repo.observe("refdata.list_provinces", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, name_th, name_en FROM provinces ORDER BY name_th ASC
		`)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	items = make([]refdata.Province, 0)

	for rows.Next() {
		var p refdata.Province

		scanErr := rows.Scan(&p.ID, &p.NameTH, &p.NameEN)

		if scanErr != nil {
			err = scanErr
			return
		}
		items = append(items, p)
	}

	err = rows.Err()
	return
}

func (repo *RefdataRepo) listDistricts(ctx context.Context) (items []refdata.District, err error) {
	var rows pgx.Rows

	err = repo.observe("refdata.list_districts", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, name_th, name_en FROM districts ORDER BY name_th ASC
		`)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	items = make([]refdata.District, 0)

	for rows.Next() {
		var d refdata.District

		scanErr := rows.Scan(&d.ID, &d.NameTH, &d.NameEN)

		if scanErr != nil {
			err = scanErr
			return
		}
		items = append(items, d)
	}

	err = rows.Err()
	return
}
