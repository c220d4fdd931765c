// Package model defines the data structures used throughout the Mindcanvas application.
package model

type Config struct {
	DatabaseType        string `json:"database_type"`
	DatabaseDir         string `json:"database_dir"`
	DatabaseFile        string `json:"database_file"`
	LogFolder           string `json:"log_folder"`
	CommandLog          string `json:"command_log"`
	ErrorLog            string `json:"error_log"`
	InfoLog             string `json:"info_log"`
	ExportFolder        string `json:"export_folder"`
	DefaultUser         string `json:"default_user"`
	DefaultUserActive   bool   `json:"default_user_active"`
	DefaultUserPassword string `json:"default_user_password"`
	DefaultMapName      string `json:"default_map_name"`
	DefaultRootText     string `json:"default_root_text"`
}
