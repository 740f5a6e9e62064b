// Package mounttest provides test doubles for the mounting layer.
//
// It ships fake component views whose reset behavior is observable, so
// tests can assert the registry's freshness guarantees instead of trusting
// them:
//
//	factory := mounttest.NewFactory()
//	registry := mounting.NewViewRegistry(factory, mounting.DefaultConfig())
//
//	desc, _ := registry.Dequeue(mounttest.TextHandle, 5)
//	text := desc.View.(*mounttest.FakeTextView)
//	text.Text = "hello"
//	registry.Enqueue(mounttest.TextHandle, 5, desc)
//
//	desc, _ = registry.Dequeue(mounttest.TextHandle, 6)
//	if !desc.View.(*mounttest.FakeTextView).AppearsFresh() {
//	    t.Error("reused view leaked content")
//	}
//
// FakeImageView carries a real offscreen raster so residual pixel content
// is detectable, not just residual field values.
package mounttest
