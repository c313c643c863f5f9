package view

// ModalView adalah permukaan modal yang dikendalikan presenter.
// Presenter-lah yang memutuskan kapan modal menutup: sukses submit → Close,
// gagal → error inline dan modal TETAP terbuka.
type ModalView interface {
	ShowError(message string)
	ShowFieldErrors(fields map[string]string)
	Close()
}

// NopModal dipakai saat tidak ada permukaan nyata (mis. tooling terminal).
type NopModal struct{}

func (NopModal) ShowError(string)                  {}
func (NopModal) ShowFieldErrors(map[string]string) {}
func (NopModal) Close()                            {}
