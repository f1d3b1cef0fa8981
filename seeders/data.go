package seeders

import "gearguard/pkg/constants"

const adminEmail = "admin@gearguard.com"

type userSeed struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var usersData = []userSeed{
	{Name: "Admin User", Email: adminEmail, Password: "admin123", Role: "manager"},
	{Name: "John Smith", Email: "john@gearguard.com", Password: "tech123", Role: "technician"},
	{Name: "Sarah Johnson", Email: "sarah@gearguard.com", Password: "tech123", Role: "technician"},
	{Name: "Mike Williams", Email: "mike@gearguard.com", Password: "tech123", Role: "technician"},
}

type teamSeed struct {
	Name         string
	Description  string
	MemberEmails []string
}

var teamsData = []teamSeed{
	{
		Name:         "Mechanics Team",
		Description:  "Handles machinery and vehicle repairs",
		MemberEmails: []string{"john@gearguard.com", "sarah@gearguard.com"},
	},
	{
		Name:         "IT Support",
		Description:  "Computer and network equipment maintenance",
		MemberEmails: []string{"mike@gearguard.com"},
	},
	{
		Name:         "Electricians",
		Description:  "Electrical systems and equipment",
		MemberEmails: []string{"sarah@gearguard.com", "mike@gearguard.com"},
	},
}

type equipmentSeed struct {
	Name             string
	SerialNumber     string
	Category         string
	Department       string
	AssignedEmployee string
	TeamName         string
	Location         string
	PurchaseDate     string
	WarrantyExpiry   string
}

var equipmentData = []equipmentSeed{
	{
		Name: "CNC Machine 01", SerialNumber: "CNC-2023-001", Category: "Machinery",
		Department: "Production", AssignedEmployee: "Production Manager", TeamName: "Mechanics Team",
		Location: "Building A, Floor 2", PurchaseDate: "2023-01-15", WarrantyExpiry: "2026-01-15",
	},
	{
		Name: "Forklift FL-05", SerialNumber: "FL-2022-005", Category: "Vehicle",
		Department: "Logistics", AssignedEmployee: "Warehouse Lead", TeamName: "Mechanics Team",
		Location: "Warehouse B", PurchaseDate: "2022-06-10", WarrantyExpiry: "2025-06-10",
	},
	{
		Name: "Desktop PC-42", SerialNumber: "PC-2024-042", Category: "Computer",
		Department: "IT", AssignedEmployee: "Jane Doe", TeamName: "IT Support",
		Location: "Office Building, Floor 3", PurchaseDate: "2024-02-01", WarrantyExpiry: "2027-02-01",
	},
	{
		Name: "Laser Cutter LC-12", SerialNumber: "LC-2023-012", Category: "Machinery",
		Department: "Production", AssignedEmployee: "Production Team", TeamName: "Mechanics Team",
		Location: "Building A, Floor 1", PurchaseDate: "2023-08-20", WarrantyExpiry: "2026-08-20",
	},
	{
		Name: "Air Compressor AC-03", SerialNumber: "AC-2021-003", Category: "Machinery",
		Department: "Production", TeamName: "Electricians",
		Location: "Building A, Basement", PurchaseDate: "2021-05-12", WarrantyExpiry: "2024-05-12",
	},
}

type requestSeed struct {
	Subject       string
	Description   string
	EquipmentName string
	RequestType   constants.RequestType
	ScheduledDate string
}

var requestsData = []requestSeed{
	{
		Subject:       "Oil Leak Detected",
		Description:   "CNC machine showing signs of hydraulic oil leakage. Requires immediate attention.",
		EquipmentName: "CNC Machine 01",
		RequestType:   constants.RequestTypeCorrective,
	},
	{
		Subject:       "Routine Checkup",
		Description:   "Monthly preventive maintenance for forklift",
		EquipmentName: "Forklift FL-05",
		RequestType:   constants.RequestTypePreventive,
		ScheduledDate: "2025-01-15",
	},
	{
		Subject:       "Software Update Required",
		Description:   "Desktop PC needs security updates and software patches",
		EquipmentName: "Desktop PC-42",
		RequestType:   constants.RequestTypeCorrective,
	},
	{
		Subject:       "Laser Alignment Check",
		Description:   "Quarterly preventive maintenance - laser alignment verification",
		EquipmentName: "Laser Cutter LC-12",
		RequestType:   constants.RequestTypePreventive,
		ScheduledDate: "2025-01-20",
	},
	{
		Subject:       "Compressor Filter Replacement",
		Description:   "Air filter needs replacement - scheduled maintenance",
		EquipmentName: "Air Compressor AC-03",
		RequestType:   constants.RequestTypePreventive,
		ScheduledDate: "2025-01-18",
	},
}
