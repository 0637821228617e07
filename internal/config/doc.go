// Package config provides configuration parsing for tagkit projects.
//
// The configuration is stored in tagkit.json at the project root.
//
// # Configuration File Structure
//
//	{
//	  "title": "Component Gallery",
//	  "serve": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "pretty": true,
//	    "metrics": true
//	  },
//	  "output": "dist",
//	  "deploy": {
//	    "bucket": "my-site",
//	    "prefix": "gallery/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
