package constants

const (
	CountShips = `
	SELECT COUNT(*) FROM ships
	`
)
