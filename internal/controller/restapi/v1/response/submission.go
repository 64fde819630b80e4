package response

type Error struct {
	Error string `json:"error" example:"Submission not found"`
}

type Message struct {
	Message string `json:"message" example:"Submission deleted successfully"`
}
