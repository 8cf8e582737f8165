package role

type RoleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
	Category string `json:"category"`
}

func ToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:       r.ID,
		Name:     r.Name,
		ColorHex: r.ColorHex,
		Category: string(r.Category),
	}
}

func ToResponses(roles []Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, ToResponse(r))
	}
	return out
}
