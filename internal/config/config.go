package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bajrangpumps/pkg/mailer"
	"bajrangpumps/pkg/sheets"
)

// Config holds everything the backend reads from the environment.
type Config struct {
	Port      string
	ExcelPath string
	SMTP      mailer.Config
	Sheets    sheets.Config
}

// Load reads configuration from environment variables, with a .env file as
// a fallback for local development. Missing SMTP or Sheets values disable
// the corresponding side channel rather than failing startup.
func Load() *Config {
	// Ignore the error: a missing .env file is the normal production case.
	_ = godotenv.Load()

	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("EXCEL_FILE_PATH", "contact_submissions.xlsx")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.AutomaticEnv()

	smtpUser := viper.GetString("SMTP_USER")
	from := viper.GetString("SMTP_FROM")
	if from == "" {
		from = smtpUser
	}

	return &Config{
		Port:      viper.GetString("APP_PORT"),
		ExcelPath: viper.GetString("EXCEL_FILE_PATH"),
		SMTP: mailer.Config{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: smtpUser,
			Password: viper.GetString("SMTP_PASS"),
			From:     from,
			To:       viper.GetString("NOTIFY_TO"),
		},
		Sheets: sheets.Config{
			SpreadsheetID: viper.GetString("GOOGLE_SHEETS_ID"),
			APIKey:        viper.GetString("GOOGLE_API_KEY"),
		},
	}
}
