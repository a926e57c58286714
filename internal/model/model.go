package model

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the service uses
// AutoMigrate 创建或更新服务使用的全部数据表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVItem{})
}
