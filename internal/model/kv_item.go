package model

import "time"

const TableNameKVItem = "kv_item"

// KVItem mapped from table <kv_item>
type KVItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id" form:"id"`
	Namespace string    `gorm:"column:namespace;type:varchar(64);not null;uniqueIndex:idx_kv_item_namespace_key,priority:1" json:"namespace" form:"namespace"`
	ItemKey   string    `gorm:"column:item_key;type:varchar(191);not null;uniqueIndex:idx_kv_item_namespace_key,priority:2" json:"itemKey" form:"itemKey"`
	Value     string    `gorm:"column:value;type:text;not null" json:"value" form:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt" form:"updatedAt"`
}

// TableName KVItem's table name
func (*KVItem) TableName() string {
	return TableNameKVItem
}
