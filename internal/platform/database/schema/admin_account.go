package schema

// AdminAccountTable represents the 'admin.account' table
type AdminAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    string
}

var AdminAccount = AdminAccountTable{
	Table:        "admin.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
}
