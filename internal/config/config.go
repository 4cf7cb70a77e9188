package config

type Config struct {
	API        APIConfig       `mapstructure:"api"`
	Display    DisplayConfig   `mapstructure:"display"`
	Log        LogConfig       `mapstructure:"log"`
	DevServer  DevServerConfig `mapstructure:"devserver"`
	ConfigPath string          `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
	// TransactionsTarget is the page element id the transaction rows are rendered into.
	TransactionsTarget string `mapstructure:"transactions_target"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type DevServerConfig struct {
	Addr   string `mapstructure:"addr"`
	DBPath string `mapstructure:"db_path"`
	Seed   bool   `mapstructure:"seed"`
}

func NewDefault() *Config {
	return &Config{
		API:       APIConfig{BaseURL: "http://localhost:8000"},
		Display:   DisplayConfig{Currency: "USD", TransactionsTarget: "transactions-body"},
		Log:       LogConfig{Level: "info", Path: ""},
		DevServer: DevServerConfig{Addr: ":8000", DBPath: "", Seed: true},
	}
}

// SetDefaults lists every key with its default so viper can write a complete
// config file and bind environment overrides for keys missing from the file.
func (c *Config) SetDefaults(set func(key string, value any)) {
	set("api.base_url", c.API.BaseURL)
	set("display.currency", c.Display.Currency)
	set("display.transactions_target", c.Display.TransactionsTarget)
	set("log.level", c.Log.Level)
	set("log.path", c.Log.Path)
	set("devserver.addr", c.DevServer.Addr)
	set("devserver.db_path", c.DevServer.DBPath)
	set("devserver.seed", c.DevServer.Seed)
}
