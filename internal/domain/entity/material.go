package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialStatus estado de publicación de un material.
type MaterialStatus string

const (
	MaterialDisponible MaterialStatus = "disponible"
	MaterialReservado  MaterialStatus = "reservado"
	MaterialVendido    MaterialStatus = "vendido"
)

// Valid indica si el estado es uno de los valores permitidos.
func (s MaterialStatus) Valid() bool {
	switch s {
	case MaterialDisponible, MaterialReservado, MaterialVendido:
		return true
	}
	return false
}

// Category categoría de material de obra.
type Category string

const (
	CategoryVallas       Category = "vallas"
	CategoryConos        Category = "conos"
	CategoryPalets       Category = "palets"
	CategoryAndamios     Category = "andamios"
	CategoryHerramientas Category = "herramientas"
	CategoryMaquinaria   Category = "maquinaria"
	CategoryConstruccion Category = "materiales-construccion"
	CategorySenalizacion Category = "señalizacion"
	CategoryProteccion   Category = "proteccion"
	CategoryOtros        Category = "otros"
)

// Valid indica si la categoría es una de las permitidas.
func (c Category) Valid() bool {
	switch c {
	case CategoryVallas, CategoryConos, CategoryPalets, CategoryAndamios,
		CategoryHerramientas, CategoryMaquinaria, CategoryConstruccion,
		CategorySenalizacion, CategoryProteccion, CategoryOtros:
		return true
	}
	return false
}

// Unit unidad de medida de la cantidad publicada.
type Unit string

const (
	UnitUnidades Unit = "unidades"
	UnitMetros   Unit = "metros"
	UnitKg       Unit = "kg"
	UnitCajas    Unit = "cajas"
	UnitPalets   Unit = "palets"
	UnitLotes    Unit = "lotes"
)

// Valid indica si la unidad es una de las permitidas.
func (u Unit) Valid() bool {
	switch u {
	case UnitUnidades, UnitMetros, UnitKg, UnitCajas, UnitPalets, UnitLotes:
		return true
	}
	return false
}

// Condition estado físico del material.
type Condition string

const (
	ConditionNuevo      Condition = "nuevo"
	ConditionComoNuevo  Condition = "como-nuevo"
	ConditionBuenEstado Condition = "buen-estado"
	ConditionUsado      Condition = "usado"
	ConditionReparacion Condition = "necesita-reparacion"
)

// Valid indica si la condición es una de las permitidas.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNuevo, ConditionComoNuevo, ConditionBuenEstado,
		ConditionUsado, ConditionReparacion:
		return true
	}
	return false
}

// Material representa un lote de material sobrante de obra puesto a la venta.
// Quantity nunca baja de 0; Status solo cambia vía la máquina de estados de
// transacciones o por acción explícita del vendedor.
type Material struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Quantity    int
	Unit        Unit
	Price       decimal.Decimal
	Condition   Condition
	Location    string
	ProjectName string
	Images      []string
	SellerID    string
	Status      MaterialStatus
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate comprueba los campos obligatorios y los rangos del material.
func (m *Material) Validate() error {
	if err := validateTitle(m.Title); err != nil {
		return err
	}
	if err := validateDescription(m.Description); err != nil {
		return err
	}
	if !m.Category.Valid() || !m.Unit.Valid() || !m.Condition.Valid() {
		return errInvalidEnum
	}
	if m.Quantity < 1 {
		return errQuantityMin
	}
	if m.Price.IsNegative() {
		return errPriceNegative
	}
	if m.Location == "" {
		return errLocationRequired
	}
	if m.SellerID == "" {
		return errSellerRequired
	}
	return nil
}
