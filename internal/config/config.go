package config

type Config struct {
	Storage    StorageConfig `mapstructure:"storage"`
	ConfigPath string        `mapstructure:"-"`
}

type StorageConfig struct {
	// Dir is the data directory holding all four flat files. Empty means the
	// per-user application data directory.
	Dir                  string `mapstructure:"dir"`
	AccountsFile         string `mapstructure:"accounts_file"`
	CredentialsFile      string `mapstructure:"credentials_file"`
	TransactionsFile     string `mapstructure:"transactions_file"`
	AdminCredentialsFile string `mapstructure:"admin_credentials_file"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:                  "",
			AccountsFile:         "accounts.txt",
			CredentialsFile:      "credentials.txt",
			TransactionsFile:     "transactions.txt",
			AdminCredentialsFile: "admin_credentials.txt",
		},
	}
}
