package fleetbook

// Vehicle is a vehicle of the fleet. Vehicles are only ever created (by
// form or by import); there is no delete path, and the only mutation is the
// id re-keying performed by a merge.
type Vehicle struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plate string `json:"plate"`
}

// Label returns the display name for the vehicle: "name (plate)" when a
// plate is present, the bare name otherwise.
func (v Vehicle) Label() string {
	if v.Plate != "" {
		return v.Name + " (" + v.Plate + ")"
	}
	return v.Name
}
