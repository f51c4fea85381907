package config

type Config struct {
	BotToken     string          `yaml:"bot_token"`
	AssetsDir    string          `yaml:"assets_dir"`
	TempDir      string          `yaml:"temp_dir"`
	FontsDir     string          `yaml:"fonts_dir"`
	FallbackFont string          `yaml:"fallback_font"`
	OverlayFile  string          `yaml:"overlay_file"`
	DefaultHero  string          `yaml:"default_hero"`
	MaxFileSize  int64           `yaml:"max_file_size"`
	Heroes       []HeroConfig    `yaml:"heroes"`
	Quotes       []string        `yaml:"quotes"`
	Render       RenderConfig    `yaml:"render"`
	Watermark    WatermarkConfig `yaml:"watermark"`
}

type HeroConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type RenderConfig struct {
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
}

type WatermarkConfig struct {
	Text    string  `yaml:"text"`
	Opacity float64 `yaml:"opacity"`
}

var DefaultHeroes = []HeroConfig{
	{Name: "郭德纲", File: "郭德纲.jpg"},
	{Name: "刘能", File: "刘能.jpg"},
	{Name: "鲁迅", File: "鲁迅.jpg"},
	{Name: "罗永浩", File: "罗永浩.jpg"},
	{Name: "马斯克", File: "马斯克.jpg"},
	{Name: "马云", File: "马云.jpg"},
	{Name: "莫言", File: "莫言.jpg"},
	{Name: "乔布斯", File: "乔布斯.jpg"},
	{Name: "杨澜", File: "杨澜.jpg"},
	{Name: "于丹", File: "于丹.jpg"},
}

func Default() *Config {
	return &Config{
		AssetsDir:   "./assets",
		TempDir:     "./temp",
		FontsDir:    "./assets/fonts",
		OverlayFile: "watermark.png",
		DefaultHero: "郭德纲",
		MaxFileSize: 10 * 1024 * 1024,
		Heroes:      append([]HeroConfig(nil), DefaultHeroes...),
		Render: RenderConfig{
			FontFamily: "Arial",
			FontSize:   24,
		},
		Watermark: WatermarkConfig{
			Text:    "fake-screenshot",
			Opacity: 0.6,
		},
	}
}
