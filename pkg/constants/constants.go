package constants

// RequestType - вид заявки.
type RequestType string

const (
	RequestTypeCorrective RequestType = "corrective" // поломка, без даты
	RequestTypePreventive RequestType = "preventive" // плановое обслуживание с датой
)

func (t RequestType) Valid() bool {
	return t == RequestTypeCorrective || t == RequestTypePreventive
}

// Статусы оборудования. "maintenance" выставляет бэкенд, пока заявка в работе.
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusScrapped    = "scrapped"
)

// Unassigned - подпись и значение "никто не назначен".
const Unassigned = "Unassigned"

// DateLayout - формат календарной даты в API.
const DateLayout = "2006-01-02"
