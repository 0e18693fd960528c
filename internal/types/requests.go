package types

import "io"

// RecipeRequest is the recipe payload accepted on create and update.
// Category carries the display label (e.g. "한식").
type RecipeRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	CookingTime string   `json:"cookingTime"`
	Difficulty  string   `json:"difficulty"`
	Ingredients []string `json:"ingredients"`
	Content     string   `json:"content"`
	Steps       []string `json:"steps"`
	FirebaseUID string   `json:"firebaseUid"`
}

// ImageUpload is an optional image accompanying a create or update.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Present reports whether an actual image was supplied.
func (u *ImageUpload) Present() bool {
	return u != nil && u.Content != nil && u.Size > 0
}

// Close releases Content when it holds an open handle. Safe on nil.
func (u *ImageUpload) Close() error {
	if u == nil {
		return nil
	}
	if c, ok := u.Content.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
