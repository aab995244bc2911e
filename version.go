package keagen

// Version of the Kea configuration generator.
const Version = "1.0.0"
