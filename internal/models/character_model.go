// Package models contains the models for the Aethelgard Community API
package models

// GameAccount represents an account row in the external game auth database.
// The table is owned by the game server; this API only reads it and renames
// accounts.
type GameAccount struct {
	ID       uint32 `gorm:"column:id" json:"id"`
	Username string `gorm:"column:username" json:"username"`
}

// TableName specifies the table name for the GameAccount model
func (GameAccount) TableName() string {
	return "account"
}

// CharacterRank is one row of the ranking projection from the external
// characters database
type CharacterRank struct {
	Name      string  `gorm:"column:name" json:"name"`
	Class     uint8   `gorm:"column:class" json:"class"`
	Level     uint8   `gorm:"column:level" json:"level"`
	TotalTime uint32  `gorm:"column:totaltime" json:"totaltime"`
	GuildName *string `gorm:"column:guildName" json:"guildName"`
	ImageURL  string  `gorm:"-" json:"imageUrl,omitempty"`
}

// OnlinePlayer is one row of the online characters projection
type OnlinePlayer struct {
	Name  string `gorm:"column:name" json:"name"`
	Class uint8  `gorm:"column:class" json:"class"`
	Level uint8  `gorm:"column:level" json:"level"`
}
