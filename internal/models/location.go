package models

// Типы причальных сооружений.
const (
	LocationTypePier   = "pier"
	LocationTypeJetty  = "jetty"
	LocationTypeMarina = "marina"
)

// MooringLocation представляет причал (пирс, пристань или марину).
//
// Всегда публичные поля: название, адрес, координаты, тип, вместимость и
// глубина. Контактные данные, описание и флаги инфраструктуры доступны
// только premium-пользователям; для остальных исходящая проекция
// формируется фильтром редакции (см. services/entitlement), сама запись
// в хранилище при этом не изменяется.
type MooringLocation struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	County           string   `json:"county"`
	Region           string   `json:"region"`
	Type             string   `json:"type"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Capacity         int      `json:"capacity"`
	Depth            float64  `json:"depth"`
	HasFuel          bool     `json:"hasFuel"`
	HasWater         bool     `json:"hasWater"`
	HasElectricity   bool     `json:"hasElectricity"`
	HasWasteDisposal bool     `json:"hasWasteDisposal"`
	HasShowers       bool     `json:"hasShowers"`
	HasRestaurant    bool     `json:"hasRestaurant"`
	Phone            *string  `json:"phone,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Website          *string  `json:"website,omitempty"`
	Description      *string  `json:"description,omitempty"`
}

// DummyLocation используется для приёма данных нового причала из JSON-запроса.
type DummyLocation struct {
	Name             string  `json:"name" validate:"required"`
	Address          string  `json:"address" validate:"required"`
	County           string  `json:"county" validate:"required"`
	Region           string  `json:"region" validate:"required"`
	Type             string  `json:"type" validate:"required,oneof=pier jetty marina"`
	Latitude         float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Capacity         int     `json:"capacity" validate:"required,gt=0"`
	Depth            float64 `json:"depth" validate:"required,gt=0"`
	HasFuel          bool    `json:"hasFuel"`
	HasWater         bool    `json:"hasWater"`
	HasElectricity   bool    `json:"hasElectricity"`
	HasWasteDisposal bool    `json:"hasWasteDisposal"`
	HasShowers       bool    `json:"hasShowers"`
	HasRestaurant    bool    `json:"hasRestaurant"`
	Phone            string  `json:"phone,omitempty" validate:"omitempty"`
	Email            string  `json:"email,omitempty" validate:"omitempty,email"`
	Website          string  `json:"website,omitempty" validate:"omitempty,url"`
	Description      string  `json:"description,omitempty"`
}
