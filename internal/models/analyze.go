package models

import "time"

// AnalyzeModel tracks page view analytics.
type AnalyzeModel struct {
	Base
	IP        string                 `json:"ip"        gorm:"index"`
	UA        map[string]interface{} `json:"ua"        gorm:"serializer:json;type:longtext"`
	Path      string                 `json:"path"      gorm:"index"`
	Referer   string                 `json:"referer"`
	Timestamp time.Time              `json:"timestamp" gorm:"index"`
}

func (AnalyzeModel) TableName() string { return "analyzes" }
