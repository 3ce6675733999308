package labels

// Option is one selectable catalog entry with both locale labels, in the
// shape the wizard renders directly.
type Option struct {
	ID     string `json:"id"`
	NameTH string `json:"nameTh"`
	NameEN string `json:"nameEn"`
}

// Display order of each catalog. Maps alone cannot carry it.
var (
	transportOrder      = []string{"public", "private", "walking"}
	publicSubTypeOrder  = []string{"bts", "mrt", "bus", "train", "boat", "other"}
	privateVehicleOrder = []string{"car", "motorcycle", "van", "other"}
	fuelTypeOrder       = []string{"gasoline", "diesel", "hybrid", "electric", "other"}
	passengerTypeOrder  = []string{"driver", "passenger"}
	attendanceOrder     = []string{"morning", "afternoon", "full_day"}
)

func options(table map[string]map[string]string, order []string) []Option {
	out := make([]Option, 0, len(order))

	for _, id := range order {
		th := lookup(table, LocaleTH, id)
		en := lookup(table, LocaleEN, id)

		if th == "" && en == "" {
			if id != "other" {
				continue
			}

			th = GenericOther(LocaleTH)
			en = GenericOther(LocaleEN)
		}

		out = append(out, Option{ID: id, NameTH: th, NameEN: en})
	}

	return out
}

func TransportOptions() []Option      { return options(transportLabels, transportOrder) }
func PublicSubTypeOptions() []Option  { return options(publicSubTypeLabels, publicSubTypeOrder) }
func PrivateVehicleOptions() []Option { return options(privateVehicleLabels, privateVehicleOrder) }
func FuelTypeOptions() []Option       { return options(fuelTypeLabels, fuelTypeOrder) }
func PassengerTypeOptions() []Option  { return options(passengerTypeLabels, passengerTypeOrder) }
func AttendanceOptions() []Option     { return options(attendanceLabels, attendanceOrder) }
