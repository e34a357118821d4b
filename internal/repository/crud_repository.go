package repository

import (
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ListQuery 通用列表查询参数
type ListQuery struct {
	Page     int
	Limit    int
	Ordering string
	Filters  map[string]interface{}
}

// CRUDRepository 泛型仓储，覆盖所有资源的通用持久化操作
type CRUDRepository[T any] struct {
	DB       *gorm.DB
	Preloads []string
}

func NewCRUDRepository[T any](db *gorm.DB, preloads ...string) *CRUDRepository[T] {
	return &CRUDRepository[T]{DB: db, Preloads: preloads}
}

func (r *CRUDRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.Preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *CRUDRepository[T]) List(q ListQuery) ([]T, int64, error) {
	var items []T
	var total int64

	db := r.DB.Model(new(T))
	for field, value := range q.Filters {
		db = db.Where(field+" = ?", value)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = r.withPreloads(db)
	if q.Ordering != "" {
		db = db.Order(q.Ordering)
	}
	if q.Limit > 0 {
		db = db.Offset((q.Page - 1) * q.Limit).Limit(q.Limit)
	}

	err := db.Find(&items).Error
	return items, total, err
}

func (r *CRUDRepository[T]) FindByID(id uint) (*T, error) {
	var obj T
	err := r.withPreloads(r.DB).First(&obj, id).Error
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// Create 在事务中创建，hook 负责关联副作用
func (r *CRUDRepository[T]) Create(obj *T, before, after func(tx *gorm.DB, obj *T) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx, obj); err != nil {
				return err
			}
		}
		if err := tx.Create(obj).Error; err != nil {
			return err
		}
		if after != nil {
			return after(tx, obj)
		}
		return nil
	})
}

func (r *CRUDRepository[T]) Save(obj *T, before, after func(tx *gorm.DB, obj *T) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx, obj); err != nil {
				return err
			}
		}
		if err := tx.Save(obj).Error; err != nil {
			return err
		}
		if after != nil {
			return after(tx, obj)
		}
		return nil
	})
}

var schemaCache = &sync.Map{}

// resolveColumns 将请求体里的 JSON 字段名映射为数据库列名。
// 未知字段忽略，主键与时间戳列不可通过本路径修改。
func (r *CRUDRepository[T]) resolveColumns(fields map[string]interface{}) (map[string]interface{}, error) {
	s, err := schema.Parse(new(T), schemaCache, r.DB.NamingStrategy)
	if err != nil {
		return nil, err
	}

	columnByJSON := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" {
			name = f.Name
		}
		if name == "-" {
			continue
		}
		columnByJSON[name] = f.DBName
	}

	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := columnByJSON[key]
		if !ok {
			if _, known := s.FieldsByDBName[key]; !known {
				continue
			}
			column = key
		}
		switch column {
		case "id", "created_at", "updated_at", "deleted_at":
			continue
		}
		columns[column] = value
	}
	return columns, nil
}

// Patch 部分更新，仅更新给定字段
func (r *CRUDRepository[T]) Patch(obj *T, fields map[string]interface{}, before, after func(tx *gorm.DB, obj *T) error) error {
	columns, err := r.resolveColumns(fields)
	if err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx, obj); err != nil {
				return err
			}
		}
		if len(columns) > 0 {
			if err := tx.Model(obj).Updates(columns).Error; err != nil {
				return err
			}
		}
		if after != nil {
			return after(tx, obj)
		}
		return nil
	})
}

func (r *CRUDRepository[T]) Delete(obj *T, before, after func(tx *gorm.DB, obj *T) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx, obj); err != nil {
				return err
			}
		}
		if err := tx.Delete(obj).Error; err != nil {
			return err
		}
		if after != nil {
			return after(tx, obj)
		}
		return nil
	})
}
