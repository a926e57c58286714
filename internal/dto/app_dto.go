package dto

import "time"

// VersionDTO Server version information
// VersionDTO 服务端版本信息
type VersionDTO struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// HealthDTO Health check response
// HealthDTO 健康检查响应
type HealthDTO struct {
	Status string  `json:"status"` // "healthy" 或 "unhealthy"
	Store  string  `json:"store"`  // 持久化后端类型
	Notes  int     `json:"notes"`  // 当前笔记数
	Uptime float64 `json:"uptime"` // 运行时间（秒）
}

// SystemInfoDTO Runtime and host information
// SystemInfoDTO 运行时与主机信息
type SystemInfoDTO struct {
	StartTime time.Time      `json:"startTime"`
	Uptime    float64        `json:"uptime"`
	Runtime   RuntimeInfoDTO `json:"runtime"`
	Memory    MemoryInfoDTO  `json:"memory"`
	Host      HostInfoDTO    `json:"host"`
	Process   ProcessInfoDTO `json:"process"`
}

type RuntimeInfoDTO struct {
	NumGoroutine int    `json:"numGoroutine"`
	MemAlloc     uint64 `json:"memAlloc"`
	MemSys       uint64 `json:"memSys"`
	NumGC        uint32 `json:"numGC"`
}

type MemoryInfoDTO struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	UsedPercent float64 `json:"usedPercent"`
}

type HostInfoDTO struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernelVersion"`
	Uptime        uint64 `json:"uptime"`
}

type ProcessInfoDTO struct {
	PID           int32   `json:"pid"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float32 `json:"memoryPercent"`
}
