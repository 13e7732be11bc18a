package settings

import (
	"fmt"
	"slices"
)

// Notifications selects which alerts and reports the user receives
type Notifications struct {
	EmailAlerts       bool `json:"emailAlerts"`
	PushNotifications bool `json:"pushNotifications"`
	CriticalAlerts    bool `json:"criticalAlerts"`
	WeeklyReports     bool `json:"weeklyReports"`
	SystemUpdates     bool `json:"systemUpdates"`
	VegetationAlerts  bool `json:"vegetationAlerts"`
	TemperatureAlerts bool `json:"temperatureAlerts"`
	MoistureAlerts    bool `json:"moistureAlerts"`
}

// Preferences holds display choices
type Preferences struct {
	Language        string `json:"language"`
	TemperatureUnit string `json:"temperatureUnit"`
	DistanceUnit    string `json:"distanceUnit"`
	TimeFormat      string `json:"timeFormat"`
	Theme           string `json:"theme"`
	MapStyle        string `json:"mapStyle"`
	DefaultView     string `json:"defaultView"`
}

// Data holds data refresh and export choices
type Data struct {
	AutoRefresh    bool   `json:"autoRefresh"`
	DataRetention  string `json:"dataRetention"`
	ExportFormat   string `json:"exportFormat"`
	HighResolution bool   `json:"highResolution"`
	RealTimeData   bool   `json:"realTimeData"`
	HistoricalData bool   `json:"historicalData"`
	Compression    bool   `json:"compression"`
}

// AppInfo describes the build. It is not user editable.
type AppInfo struct {
	Version    string `json:"version"`
	Team       string `json:"team"`
	LastUpdate string `json:"lastUpdate"`
	Region     string `json:"region"`
	Status     string `json:"status"`
}

// Settings is everything shown on the settings page
type Settings struct {
	Notifications Notifications `json:"notifications"`
	Preferences   Preferences   `json:"preferences"`
	Data          Data          `json:"dataSettings"`
	App           AppInfo       `json:"appInfo"`
}

// Defaults returns the factory settings
func Defaults() Settings {
	return Settings{
		Notifications: Notifications{
			EmailAlerts:       true,
			PushNotifications: false,
			CriticalAlerts:    true,
			WeeklyReports:     true,
			SystemUpdates:     false,
			VegetationAlerts:  true,
			TemperatureAlerts: false,
			MoistureAlerts:    true,
		},
		Preferences: Preferences{
			Language:        "pt-BR",
			TemperatureUnit: "celsius",
			DistanceUnit:    "kilometers",
			TimeFormat:      "24h",
			Theme:           "auto",
			MapStyle:        "satellite",
			DefaultView:     "overview",
		},
		Data: Data{
			AutoRefresh:    true,
			DataRetention:  "30days",
			ExportFormat:   "csv",
			HighResolution: false,
			RealTimeData:   true,
			HistoricalData: false,
			Compression:    true,
		},
		App: AppInfo{
			Version:    "2.1.0",
			Team:       "NASA Space Apps 2025 - Grupo Galactus X",
			LastUpdate: "01/12/2024",
			Region:     "África Austral",
			Status:     "stable",
		},
	}
}

// ToggleKeys lists the on/off settings in display order
var ToggleKeys = []string{
	"emailAlerts", "pushNotifications", "criticalAlerts", "vegetationAlerts",
	"weeklyReports", "systemUpdates", "temperatureAlerts", "moistureAlerts",
	"autoRefresh", "realTimeData", "compression", "highResolution", "historicalData",
}

// ChoiceKeys lists the multiple-choice settings in display order
var ChoiceKeys = []string{
	"language", "temperatureUnit", "mapStyle", "distanceUnit", "timeFormat",
	"theme", "defaultView", "dataRetention", "exportFormat",
}

// Options lists the allowed values of each choice setting
var Options = map[string][]string{
	"language":        {"pt-BR", "en-US", "es-ES"},
	"temperatureUnit": {"celsius", "fahrenheit"},
	"mapStyle":        {"satellite", "terrain", "streets", "light"},
	"distanceUnit":    {"kilometers", "miles"},
	"timeFormat":      {"24h", "12h"},
	"theme":           {"auto", "light", "dark"},
	"defaultView":     {"overview", "alerts", "climate", "vegetation"},
	"dataRetention":   {"7days", "30days", "90days", "1year"},
	"exportFormat":    {"csv", "json", "shp"},
}

var labels = map[string]string{
	"emailAlerts":       "Alertas por Email",
	"pushNotifications": "Notificações Push",
	"criticalAlerts":    "Alertas Críticos",
	"vegetationAlerts":  "Alertas Vegetação",
	"weeklyReports":     "Relatórios Semanais",
	"systemUpdates":     "Atualizações",
	"temperatureAlerts": "Alertas Temperatura",
	"moistureAlerts":    "Alertas Umidade",
	"autoRefresh":       "Atualização Automática",
	"realTimeData":      "Dados Tempo Real",
	"compression":       "Compressão",
	"highResolution":    "Alta Resolução",
	"historicalData":    "Dados Históricos",
	"language":          "Idioma",
	"temperatureUnit":   "Unidade de Temperatura",
	"mapStyle":          "Estilo do Mapa",
	"distanceUnit":      "Unidade de Distância",
	"timeFormat":        "Formato de Hora",
	"theme":             "Tema",
	"defaultView":       "Visualização Padrão",
	"dataRetention":     "Retenção de Dados",
	"exportFormat":      "Formato de Exportação",
}

// Label returns the display name of a setting key
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func (s *Settings) toggle(key string) *bool {
	switch key {
	case "emailAlerts":
		return &s.Notifications.EmailAlerts
	case "pushNotifications":
		return &s.Notifications.PushNotifications
	case "criticalAlerts":
		return &s.Notifications.CriticalAlerts
	case "weeklyReports":
		return &s.Notifications.WeeklyReports
	case "systemUpdates":
		return &s.Notifications.SystemUpdates
	case "vegetationAlerts":
		return &s.Notifications.VegetationAlerts
	case "temperatureAlerts":
		return &s.Notifications.TemperatureAlerts
	case "moistureAlerts":
		return &s.Notifications.MoistureAlerts
	case "autoRefresh":
		return &s.Data.AutoRefresh
	case "highResolution":
		return &s.Data.HighResolution
	case "realTimeData":
		return &s.Data.RealTimeData
	case "historicalData":
		return &s.Data.HistoricalData
	case "compression":
		return &s.Data.Compression
	}
	return nil
}

func (s *Settings) choice(key string) *string {
	switch key {
	case "language":
		return &s.Preferences.Language
	case "temperatureUnit":
		return &s.Preferences.TemperatureUnit
	case "distanceUnit":
		return &s.Preferences.DistanceUnit
	case "timeFormat":
		return &s.Preferences.TimeFormat
	case "theme":
		return &s.Preferences.Theme
	case "mapStyle":
		return &s.Preferences.MapStyle
	case "defaultView":
		return &s.Preferences.DefaultView
	case "dataRetention":
		return &s.Data.DataRetention
	case "exportFormat":
		return &s.Data.ExportFormat
	}
	return nil
}

// Enabled reports the value of an on/off setting
func (s *Settings) Enabled(key string) bool {
	if p := s.toggle(key); p != nil {
		return *p
	}
	return false
}

// Toggle flips an on/off setting
func (s *Settings) Toggle(key string) error {
	p := s.toggle(key)
	if p == nil {
		return fmt.Errorf("unknown toggle setting %q", key)
	}
	*p = !*p
	return nil
}

// Value returns the current value of a choice setting
func (s *Settings) Value(key string) string {
	if p := s.choice(key); p != nil {
		return *p
	}
	return ""
}

// Set assigns a choice setting, rejecting values outside its options
func (s *Settings) Set(key, value string) error {
	p := s.choice(key)
	if p == nil {
		return fmt.Errorf("unknown setting %q", key)
	}
	if !slices.Contains(Options[key], value) {
		return fmt.Errorf("invalid value %q for %s", value, key)
	}
	*p = value
	return nil
}

// Cycle advances a choice setting to its next option, wrapping around
func (s *Settings) Cycle(key string) error {
	p := s.choice(key)
	if p == nil {
		return fmt.Errorf("unknown setting %q", key)
	}
	opts := Options[key]
	i := slices.Index(opts, *p)
	*p = opts[(i+1)%len(opts)]
	return nil
}
