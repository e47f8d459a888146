package transducer

// Version is the library and CLI version. Release builds override it with
// -ldflags "-X github.com/aretw0/transducer.Version=...".
var Version = "0.1.0"
