package dao

import (
	"context"
	"errors"

	"github.com/haierkeys/fast-note-keep/internal/domain"
	"github.com/haierkeys/fast-note-keep/internal/model"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRepository 实现 domain.BatchKVStore 接口
// All keys live in the kv_item table scoped by namespace.
type kvRepository struct {
	dao       *Dao
	namespace string
}

// NewKVRepository 创建 KVStore 实例
func NewKVRepository(dao *Dao, namespace string) domain.BatchKVStore {
	if namespace == "" {
		namespace = "default"
	}
	return &kvRepository{dao: dao, namespace: namespace}
}

// Get 根据键获取值，不存在时 ok=false
func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var m model.KVItem
	err := r.dao.DB().WithContext(ctx).
		Where("namespace = ? AND item_key = ?", r.namespace, key).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, pkgerrors.Wrap(err, "kv get")
	}
	return m.Value, true, nil
}

// Set 写入单个键
func (r *kvRepository) Set(ctx context.Context, key string, value string) error {
	return r.SetBatch(ctx, []domain.KVPair{{Key: key, Value: value}})
}

// SetBatch 在一个事务内写入多个键
func (r *kvRepository) SetBatch(ctx context.Context, pairs []domain.KVPair) error {
	err := r.dao.ExecuteWrite(ctx, r.namespace, func(tx *gorm.DB) error {
		for _, p := range pairs {
			m := &model.KVItem{
				Namespace: r.namespace,
				ItemKey:   p.Key,
				Value:     p.Value,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "namespace"}, {Name: "item_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(m).Error
			if err != nil {
				return pkgerrors.Wrapf(err, "kv set %s", p.Key)
			}
		}
		return nil
	})
	return err
}

// Delete 删除键，不存在时不报错
func (r *kvRepository) Delete(ctx context.Context, key string) error {
	return r.dao.ExecuteWrite(ctx, r.namespace, func(tx *gorm.DB) error {
		err := tx.Where("namespace = ? AND item_key = ?", r.namespace, key).
			Delete(&model.KVItem{}).Error
		return pkgerrors.Wrap(err, "kv delete")
	})
}
