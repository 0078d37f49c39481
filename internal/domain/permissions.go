package domain

// Bits de permisos de Discord que usa el catálogo.
const (
	PermKickMembers     int64 = 1 << 1
	PermBanMembers      int64 = 1 << 2
	PermManageChannels  int64 = 1 << 4
	PermManageMessages  int64 = 1 << 13
	PermModerateMembers int64 = 1 << 40
)
