package dvdsaver

// InjectKeyRelease queues a synthetic key release. It is processed on the next
// Update exactly as if the key had been released on the keyboard.
func (s *Scene) InjectKeyRelease(key rune) {
	s.injectQueue = append(s.injectQueue, key)
}

// InjectKeys queues a release for every rune in keys, in order.
func (s *Scene) InjectKeys(keys string) {
	for _, r := range keys {
		s.InjectKeyRelease(r)
	}
}
