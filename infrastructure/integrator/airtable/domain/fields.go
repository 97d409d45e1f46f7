package airtabledomain

// SalesFields mapeia os campos de um registro da tabela de vendas
type SalesFields struct {
	Name             string   `mapstructure:"Name"`
	UserID           string   `mapstructure:"ユーザーID"`
	ProductName      string   `mapstructure:"商品名"`
	Category         string   `mapstructure:"カテゴリ"`
	Amount           int64    `mapstructure:"寄付金額"`
	OrderDate        string   `mapstructure:"注文日時"`
	Prefecture       string   `mapstructure:"都道府県"`
	AgeGroup         string   `mapstructure:"年代"`
	Gender           string   `mapstructure:"性別"`
	PaymentMethod    string   `mapstructure:"支払い方法"`
	Status           string   `mapstructure:"ステータス"`
	PlatformCategory []string `mapstructure:"プラットフォームカテゴリ"`
}

// PlatformFields mapeia os campos da tabela de plataformas
type PlatformFields struct {
	Name          string   `mapstructure:"Name"`
	LinkedRecords []string `mapstructure:"縦連結"`
}
