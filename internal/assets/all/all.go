package all

import (
	_ "github.com/bornholm/navbar/internal/assets/local"
	_ "github.com/bornholm/navbar/internal/assets/s3"
)
